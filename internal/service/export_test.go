package service

import "time"

func (s *FreshnessService) SetClock(now func() time.Time) { s.now = now }

func (p *Primer) SetClock(now func() time.Time) { p.now = now }
