// This file is part of DebugDash.
//
// DebugDash is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DebugDash is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DebugDash.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values,
// like Errorf() in the fmt package.
//
// The pattern is also the identity of the error. The Is() function checks
// whether an error is a curated error with a specific pattern:
//
//	e := curated.Errorf("dashboard: %v", v)
//
//	if curated.Is(e, "dashboard: %v") {
//		fmt.Println("true")
//	}
//
// Has() is similar but checks whether the pattern occurs anywhere in the
// error chain, rather than just at the head. IsAny() answers whether the
// error is curated at all; an uncurated error is one from outside the
// project and is generally treated as unexpected.
//
// The Error() function normalises the message chain by removing duplicate
// adjacent parts, which loosens the rules about when wrapping an error is
// appropriate.
package curated
