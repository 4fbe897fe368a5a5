package compare

import (
	"errors"
	"fmt"
)

// ErrDivideByZeroGap — gap относительно нулевого лучшего Cmax для ненулевого кандидата.
var ErrDivideByZeroGap = errors.New("gap undefined: best cmax is zero")

// Gap = (cmax - best) / best. При best == 0 определён только для cmax == 0.
func Gap(cmax, best int) (float64, error) {
	if best == 0 {
		if cmax == 0 {
			return 0, nil
		}
		return 0, fmt.Errorf("cmax=%d: %w", cmax, ErrDivideByZeroGap)
	}
	return float64(cmax-best) / float64(best), nil
}
