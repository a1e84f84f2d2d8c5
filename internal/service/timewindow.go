package service

import (
	"time"
)

// TimeWindowFilter - фильтр выборки инцидентов по окну времени.
// Все значения приходят из query-параметров и считаются недоверенными.
type TimeWindowFilter struct {
	Hours  *int
	Days   *int
	Weeks  *int
	Months *int
}

// ResolveTimeWindow преобразует фильтр в нижнюю границу времени выборки.
//
// Приоритет ключей: hours > days > weeks > months. Порядок совпадает с
// порядком проверки условий в исходном контракте и зафиксирован намеренно:
// при нескольких переданных ключах выигрывает первый непустой.
// Недели пересчитываются в дни (n*7), месяцы считаются календарно.
// Пустой фильтр означает окно в один месяц назад.
//
// Значение фильтра обязано быть положительным целым. Граница всегда
// передается в SQL отдельным параметром, никакой интерполяции в текст
// запроса не допускается.
func ResolveTimeWindow(filter TimeWindowFilter, now time.Time) (time.Time, error) {
	switch {
	case filter.Hours != nil:
		n, err := positive("hours", *filter.Hours)
		if err != nil {
			return time.Time{}, err
		}
		return now.Add(-time.Duration(n) * time.Hour), nil
	case filter.Days != nil:
		n, err := positive("days", *filter.Days)
		if err != nil {
			return time.Time{}, err
		}
		return now.AddDate(0, 0, -n), nil
	case filter.Weeks != nil:
		n, err := positive("weeks", *filter.Weeks)
		if err != nil {
			return time.Time{}, err
		}
		return now.AddDate(0, 0, -n*7), nil
	case filter.Months != nil:
		n, err := positive("months", *filter.Months)
		if err != nil {
			return time.Time{}, err
		}
		return now.AddDate(0, -n, 0), nil
	default:
		return now.AddDate(0, -1, 0), nil
	}
}

func positive(field string, n int) (int, error) {
	if n <= 0 {
		return 0, NewValidationError(field, "must be a positive integer")
	}
	return n, nil
}
