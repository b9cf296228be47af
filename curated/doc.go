// This file is part of SceneVM.
//
// SceneVM is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SceneVM is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SceneVM.  If not, see <https://www.gnu.org/licenses/>.

// Package curated implements the error type used throughout SceneVM.
//
// Curated errors are created with Errorf(). Unlike fmt.Errorf() the pattern
// and the values are kept separately, the pattern identifying the kind of
// error:
//
//	const IllegalCondition = "memman: illegal condition (%d)"
//
//	err := curated.Errorf(IllegalCondition, 3)
//	if curated.Is(err, IllegalCondition) {
//		...
//	}
//
// Patterns that callers are expected to test for are declared as constants
// in the package that creates them. These constants act as the sentinel
// errors of the package.
//
// Has() checks whether the pattern occurs anywhere in the chain of wrapped
// curated errors:
//
//	f := curated.Errorf("simulation: %v", err)
//	curated.Has(f, memman.IllegalCondition) // true
//	curated.Is(f, memman.IllegalCondition)  // false
//
// The Error() function normalises the message by removing adjacent
// duplicate parts. Parts are the substrings separated by ": ". This means
// wrapping functions don't need to know whether their callee already added
// the same prefix:
//
//	script: script: unrecognised op
//
// becomes
//
//	script: unrecognised op
//
// Curated errors also implement Unwrap() so the standard library errors
// package can see through them to the first wrapped error value.
package curated
