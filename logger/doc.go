// This file is part of Glowmask.
//
// Glowmask is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Glowmask is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Glowmask.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central logging facility for the application. Log
// entries are a tag and a detail string. The tag identifies the part of the
// application the entry came from ("pipeline", "opengl", "imageload", etc.)
//
// Consecutive identical entries are collapsed into one entry with a repeat
// count. Only the most recent entries are kept.
//
// Logging is subject to a Permission. Most callers will use logger.Allow but
// a component can implement the Permission interface to silence itself when
// appropriate. For example, the CPU reference device only logs when it is
// not being driven by a test harness.
package logger
