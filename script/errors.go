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

package script

// Sentinal error patterns. All of these are fatal to the frame in which
// they occur.
const (
	InstanceFault    = "script: %v: %v"
	UnknownOp        = "script: unknown op (%T)"
	UnknownProgram   = "script: unknown program (overlay %d, script %d)"
	InstructionLimit = "script: instruction limit (%d) exceeded"
	BadOperand       = "script: bad operand: %v"
	AssemblyError    = "script: assembly: %v"
	ProgramError     = "script: program %v: %v"
)
