package lookups

import "github.com/m04kA/SMC-SchedulingConsole/internal/domain"

// MergeByID объединяет два списка вариантов в один, дедуплицируя по id.
// Детерминированный приоритет: primary побеждает fallback; порядок
// такой: сначала primary как есть, затем fallback-записи, которых нет в primary.
// Заменяет ad hoc слияние "результаты поиска + уже известные записи"
// из оригинала.
func MergeByID(primary, fallback []domain.LookupOption) []domain.LookupOption {
	merged := make([]domain.LookupOption, 0, len(primary)+len(fallback))
	seen := make(map[string]struct{}, len(primary))

	for _, opt := range primary {
		if _, dup := seen[opt.ID]; dup {
			continue
		}
		seen[opt.ID] = struct{}{}
		merged = append(merged, opt)
	}
	for _, opt := range fallback {
		if _, dup := seen[opt.ID]; dup {
			continue
		}
		seen[opt.ID] = struct{}{}
		merged = append(merged, opt)
	}
	return merged
}
