package usecase

import "time"

// SetNow fija el reloj del caso de uso en tests.
func (uc *AnalyticsUseCase) SetNow(now func() time.Time) { uc.now = now }
