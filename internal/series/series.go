// Package series превращает сырые точки вызовов по дням от сервера
// в упорядоченный ряд для отображения.
//
// Дни, которых сервер не вернул, не достраиваются: пропущенный день означает
// "нет данных", и график не должен рисовать его нулем.
package series

import (
	"fmt"
	"sort"
	"time"

	"github.com/shenikar/fire_dashboard/internal/models"
)

// ShortLabelLayout - формат месяц-день для коротких подписей оси
const ShortLabelLayout = "01-02"

// DuplicateSampleError - в выборке две точки за один день
type DuplicateSampleError struct {
	Date string
}

func (e *DuplicateSampleError) Error() string {
	return fmt.Sprintf("duplicate sample for %s", e.Date)
}

// InvalidSampleError - некорректная точка (дата или отрицательное значение)
type InvalidSampleError struct {
	Date   string
	Count  int
	Reason string
}

func (e *InvalidSampleError) Error() string {
	return fmt.Sprintf("invalid sample %s=%d: %s", e.Date, e.Count, e.Reason)
}

type Point struct {
	Date  time.Time
	Count int
}

// Series строго возрастает по дате, по одной точке на день
type Series []Point

// Chart - проекция ряда для отрисовки графика. В Dates лежит полная
// ISO-дата каждой подписи для подсказок.
type Chart struct {
	Labels []string
	Values []int
	Dates  []string
}

// Normalize проверяет точки и сортирует их по возрастанию. Неупорядоченный
// вход допустим, дубли дней и отрицательные значения нет.
func Normalize(samples []models.TimeSeriesPoint) (Series, error) {
	out := make(Series, 0, len(samples))
	for _, s := range samples {
		day, err := time.Parse(models.DateLayout, s.Date)
		if err != nil {
			return nil, &InvalidSampleError{Date: s.Date, Count: s.Count, Reason: "date is not YYYY-MM-DD"}
		}
		if s.Count < 0 {
			return nil, &InvalidSampleError{Date: s.Date, Count: s.Count, Reason: "count is negative"}
		}
		out = append(out, Point{Date: day, Count: s.Count})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	for i := 1; i < len(out); i++ {
		if out[i].Date.Equal(out[i-1].Date) {
			return nil, &DuplicateSampleError{Date: out[i].Date.Format(models.DateLayout)}
		}
	}
	return out, nil
}

// ShortLabel форматирует день только для отображения
func ShortLabel(day time.Time) string {
	return day.Format(ShortLabelLayout)
}

func (s Series) Chart() Chart {
	c := Chart{
		Labels: make([]string, len(s)),
		Values: make([]int, len(s)),
		Dates:  make([]string, len(s)),
	}
	for i, p := range s {
		c.Labels[i] = ShortLabel(p.Date)
		c.Values[i] = p.Count
		c.Dates[i] = p.Date.Format(models.DateLayout)
	}
	return c
}

// Lookup возвращает значение за день. ok равен false, если сервер
// за этот день ничего не вернул.
func (s Series) Lookup(day time.Time) (count int, ok bool) {
	key := day.Format(models.DateLayout)
	i := sort.Search(len(s), func(i int) bool {
		return s[i].Date.Format(models.DateLayout) >= key
	})
	if i < len(s) && s[i].Date.Format(models.DateLayout) == key {
		return s[i].Count, true
	}
	return 0, false
}

// Total суммирует все значения ряда
func (s Series) Total() int {
	total := 0
	for _, p := range s {
		total += p.Count
	}
	return total
}
