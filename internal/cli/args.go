package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/lumieres/internal/domain"
)

func parseDay(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidDay, arg)
	}
	if err := domain.ValidateDay(n); err != nil {
		return 0, err
	}
	return n, nil
}

func parseDaySlot(dayArg, slotArg string) (int, domain.Slot, error) {
	day, err := parseDay(dayArg)
	if err != nil {
		return 0, "", err
	}
	slot, err := domain.ParseSlot(slotArg)
	if err != nil {
		return 0, "", err
	}
	return day, slot, nil
}
