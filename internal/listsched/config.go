package listsched

import (
	"fmt"
)

// Order — правило упорядочивания работ перед жадным назначением.
type Order string

const (
	OrderLPT         Order = "LPT"
	OrderSPT         Order = "SPT"
	OrderMixedLPTSPT Order = "MIXED_LPT_SPT"
	OrderMixedSPTLPT Order = "MIXED_SPT_LPT"
	OrderPercentage  Order = "PCT_SPT_LPT"
)

// Orders — фиксированный порядок приоритета при равенстве Cmax.
var Orders = []Order{
	OrderLPT,
	OrderSPT,
	OrderMixedLPTSPT,
	OrderMixedSPTLPT,
	OrderPercentage,
}

// Rounding — политика вычисления точки разбиения для процентной эвристики.
type Rounding string

const (
	RoundingRound Rounding = "round"
	RoundingCeil  Rounding = "ceil"
)

type Config struct {
	Order Order
	// Percent — доля SPT-части в процентах, только для OrderPercentage.
	Percent  int
	Rounding Rounding
}

func DefaultConfig() Config {
	return Config{
		Order:    OrderLPT,
		Rounding: RoundingRound,
	}
}

func (c Config) Validate() error {
	switch c.Order {
	case OrderLPT, OrderSPT, OrderMixedLPTSPT, OrderMixedSPTLPT:
		// ok
	case OrderPercentage:
		if c.Percent < 0 || c.Percent > 100 {
			return fmt.Errorf(
				"процент SPT-части должен быть в диапазоне [0,100] (получено %d)",
				c.Percent,
			)
		}
		switch c.Rounding {
		case RoundingRound, RoundingCeil:
			// ok
		default:
			return fmt.Errorf("неизвестная политика округления %q", c.Rounding)
		}
	default:
		return fmt.Errorf("неизвестная эвристика %q", c.Order)
	}
	return nil
}

// Name — отображаемое имя эвристики.
func (c Config) Name() string {
	switch c.Order {
	case OrderMixedLPTSPT:
		return "50% LPT-SPT"
	case OrderMixedSPTLPT:
		return "50% SPT-LPT"
	case OrderPercentage:
		return fmt.Sprintf("%d%% SPT-LPT (%s)", c.Percent, c.Rounding)
	default:
		return string(c.Order)
	}
}

// ParseOrder принимает как канонические имена, так и короткие формы из CLI.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "LPT", "lpt":
		return OrderLPT, nil
	case "SPT", "spt":
		return OrderSPT, nil
	case "MIXED_LPT_SPT", "LPT-SPT", "lpt-spt":
		return OrderMixedLPTSPT, nil
	case "MIXED_SPT_LPT", "SPT-LPT", "spt-lpt":
		return OrderMixedSPTLPT, nil
	case "PCT_SPT_LPT", "PCT", "pct":
		return OrderPercentage, nil
	}
	return "", fmt.Errorf("неизвестная эвристика %q; доступные: %v", s, Orders)
}
