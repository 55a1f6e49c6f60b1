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

// Package prefs facilitates the storage of preferential values in the
// emulator. Preference values are declared with one of the types in this
// package (Bool, Int, Float, String or Generic) and added to a Disk instance
// with a key:
//
//	var vsync prefs.Bool
//	dsk, _ := prefs.NewDisk(path)
//	dsk.Add("video.vsync", &vsync)
//
// Preferences are saved as a sorted list of "key :: value" lines, preceded
// by the WarningBoilerPlate line. More than one Disk instance can use the
// same file.
//
// Values can be overridden from the command line with
// PushCommandLineStack(). The values in the top-most group are applied when
// the key is added to a Disk.
package prefs
