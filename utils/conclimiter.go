package utils

import "sync"

// ConcLimiter bounds the number of concurrently running goroutines.
// Increase() blocks once the limit is reached until a running task
// calls Decrease().
type ConcLimiter struct {
	wg          sync.WaitGroup
	concurrency chan bool
}

func NewConcLimiter(conc int) *ConcLimiter {
	if conc < 1 {
		conc = 1
	}
	return &ConcLimiter{concurrency: make(chan bool, conc)}
}

func (c *ConcLimiter) Increase() {
	c.wg.Add(1)
	c.concurrency <- true
}

func (c *ConcLimiter) Decrease() {
	<-c.concurrency
	c.wg.Done()
}

func (c *ConcLimiter) Wait() {
	c.wg.Wait()
}
