// This file is part of Tort.
//
// Tort is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tort is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tort.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is the project's error type. Errors are created with a
// pattern string, in the manner of fmt.Errorf(), but the pattern itself is
// kept and can be tested for later:
//
//	err := curated.Errorf(script.UnterminatedOrthogram, 12, 4)
//	...
//	if curated.Is(err, script.UnterminatedOrthogram) {
//		...
//	}
//
// This gives us sentinel-like errors without losing the formatted detail. The
// Has() function performs the same test but looks through the whole chain of
// wrapped curated errors, not just the outermost one.
//
// Packages that produce errors worth distinguishing declare their patterns as
// exported string constants.
package curated
