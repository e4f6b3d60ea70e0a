//go:build linux

package affinity

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// setSize is CPU_SETSIZE, the number of CPUs a unix.CPUSet can hold.
const setSize = 1024

func pin(cpu int) error {
	var set unix.CPUSet
	if cpu >= setSize {
		return fmt.Errorf("%w: %d", ErrInvalidCPU, cpu)
	}
	set.Zero()
	set.Set(cpu)
	// pid 0 is the calling thread
	return unix.SchedSetaffinity(0, &set)
}

func allowed() ([]int, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return nil, err
	}
	cpus := make([]int, 0, set.Count())
	for i := 0; i < setSize; i++ {
		if set.IsSet(i) {
			cpus = append(cpus, i)
		}
	}
	return cpus, nil
}
