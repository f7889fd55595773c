package controller

import "time"

func (rl *RateLimiter) SetClock(now func() time.Time) { rl.now = now }
