package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"hr-assistant/internal/holiday"
)

func (uc *implUseCase) All(ctx context.Context) ([]holiday.Holiday, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	// ISO dates sort lexically.
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date < list[j].Date })
	return list, nil
}

func (uc *implUseCase) Upcoming(ctx context.Context, limit int) ([]holiday.Upcoming, error) {
	list, err := uc.All(ctx)
	if err != nil {
		return nil, err
	}

	today := uc.dateMath.StartOfDay(uc.now())
	out := make([]holiday.Upcoming, 0, len(list))
	for _, h := range list {
		d, err := uc.dateMath.ParseISODate(h.Date)
		if err != nil {
			uc.l.Warnf(ctx, "holiday.usecase.Upcoming: skipping %s: %v", h.ID, err)
			continue
		}
		if d.Before(today) {
			continue
		}
		out = append(out, holiday.Upcoming{Holiday: h, DaysUntil: uc.dateMath.DaysUntil(d, today)})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (uc *implUseCase) ByMonth(ctx context.Context, month time.Month) ([]holiday.Holiday, error) {
	if month < time.January || month > time.December {
		return nil, holiday.ErrInvalidMonth
	}
	list, err := uc.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]holiday.Holiday, 0)
	for _, h := range list {
		d, err := uc.dateMath.ParseISODate(h.Date)
		if err != nil {
			continue
		}
		if d.Month() == month {
			out = append(out, h)
		}
	}
	return out, nil
}
