// This file is part of Retrogate.
//
// Retrogate is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Retrogate is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Retrogate.  If not, see <https://www.gnu.org/licenses/>.

// Package paths contains functions to prepare paths to retrogate resources.
//
// The ResourcePath() function returns the path to a resource, prepended with
// the appropriate config directory. For example, the following will return
// the path to the preferences file:
//
//	p, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// For development builds the config directory is ".retrogate" in the current
// working directory. For release builds (built with the release tag) the
// directory is "retrogate" in the user's config directory, as returned by
// os.UserConfigDir(). On a modern Linux system the path returned by the
// example above would be:
//
//	/home/user/.config/retrogate/preferences
//
// Setting the RETROGATE_HOME environment variable replaces the config
// directory for both kinds of build.
//
// Directories are created as required.
package paths
