//go:build !linux

package affinity

func pin(int) error {
	return ErrNotSupported
}

func allowed() ([]int, error) {
	return nil, ErrNotSupported
}
