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
package paths

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/retrogate/curated"
)

// HomeEnv names the environment variable that, if set, replaces the
// build-dependent base directory.
const HomeEnv = "RETROGATE_HOME"

// PathError is the pattern for errors from this package.
const PathError = "paths: %v"

func getBasePath(subPth string) (string, error) {
	root, ok := os.LookupEnv(HomeEnv)
	if !ok || root == "" {
		var err error
		root, err = baseRoot()
		if err != nil {
			return "", err
		}
	}

	pth := filepath.Join(root, subPth)
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}

// ResourcePath returns the path to the resource. The sub-path directories
// are created if they do not exist but the file itself is not checked for.
// An empty subPth or file is ignored.
func ResourcePath(subPth string, file string) (string, error) {
	basePath, err := getBasePath(subPth)
	if err != nil {
		return "", curated.Errorf(PathError, err)
	}
	return filepath.Join(basePath, file), nil
}
