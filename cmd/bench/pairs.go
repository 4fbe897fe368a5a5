package main

import (
	"fmt"
	"strconv"
	"strings"

	"pmsBench/internal/config"
)

func parsePairs(s string) ([]config.Profile, error) {
	parts := splitCSV(s)
	out := make([]config.Profile, 0, len(parts))

	for _, p := range parts {
		jm := strings.Split(p, "x")
		if len(jm) != 2 {
			return nil, fmt.Errorf("пара %q невалидной схемы, пример: 50x10", p)
		}
		jobs, err := atoiStrict(jm[0])
		if err != nil {
			return nil, fmt.Errorf("пара %q: ошибка парсинга количества работ: %w", p, err)
		}
		machines, err := atoiStrict(jm[1])
		if err != nil {
			return nil, fmt.Errorf("пара %q: ошибка парсинга количества машин: %w", p, err)
		}
		if jobs < 0 || machines <= 0 {
			return nil, fmt.Errorf("пара %q: количество работ должно быть >= 0, машин > 0", p)
		}

		out = append(out, config.Profile{Jobs: jobs, Machines: machines})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("не задано ни одной пары")
	}
	return out, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoiStrict(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
