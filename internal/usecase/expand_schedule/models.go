package expand_schedule

// ExpandResult результат развертки одного паттерна
type ExpandResult struct {
	// SlotsCreated количество реально созданных слотов
	// (пропущенные дубли не считаются)
	SlotsCreated int
}

// SweepResult сводка по развертке всех активных паттернов
type SweepResult struct {
	PatternsProcessed int // Сколько активных паттернов обработано
	SlotsCreated      int // Сколько слотов создано суммарно
}
