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

// Package performance provides the pprof wrappers used by the -profile
// command line flag.
package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/tort-lang/tort/curated"
)

// sentinal error pattern for this package.
const ProfilingError = "profiling: %v"

// ProfileCPU runs the supplied function, writing a cpu profile of it to
// outFile.
func ProfileCPU(outFile string, run func() error) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(ProfilingError, err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return curated.Errorf(ProfilingError, err)
	}
	defer pprof.StopCPUProfile()

	return run()
}

// ProfileMem writes a heap profile to outFile. Call after the interesting
// work has completed.
func ProfileMem(outFile string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(ProfilingError, err)
	}
	defer f.Close()

	runtime.GC()

	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf(ProfilingError, err)
	}

	return nil
}
