package pms

import (
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
)

// ValidateAssignment проверяет, что каждой работе назначена существующая машина.
func ValidateAssignment(assignment []int, jobs, machines int) error {
	if len(assignment) != jobs {
		return fmt.Errorf("assignment length must be %d (got %d): %w",
			jobs, len(assignment),
			invalid("ValidateAssignment", goerrors.ErrInvalidInput{InputName: "Assignment"}),
		)
	}
	for i, m := range assignment {
		if m < 0 || m >= machines {
			return fmt.Errorf("assignment[%d]=%d out of range [0,%d): %w",
				i, m, machines,
				invalid("ValidateAssignment", goerrors.ErrInvalidInput{InputName: "Assignment"}),
			)
		}
	}
	return nil
}

// MachineLoads восстанавливает вектор нагрузок машин по назначению.
func MachineLoads(loads, assignment []int, machines int) ([]int, error) {
	if err := ValidateAssignment(assignment, len(loads), machines); err != nil {
		return nil, err
	}
	out := make([]int, machines)
	for job, m := range assignment {
		out[m] += loads[job]
	}
	return out, nil
}
