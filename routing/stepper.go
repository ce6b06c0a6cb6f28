package routing

import (
	"github.com/ttpr0/go-pathfind/geo"
)

// Stepper hands out the trace of a finished search in batches so that a
// consumer can reveal the exploration gradually. It does not run any search.
type Stepper struct {
	result Result
	pos    int
}

func NewStepper(result Result) *Stepper {
	return &Stepper{result: result}
}

// Calls the callback for the next count trace segments. Returns false once the
// whole trace has been handed out.
func (self *Stepper) Steps(count int, callback func(geo.Segment)) bool {
	for i := 0; i < count && self.pos < len(self.result.Trace); i++ {
		callback(self.result.Trace[self.pos])
		self.pos += 1
	}
	return !self.Done()
}

func (self *Stepper) Done() bool {
	return self.pos >= len(self.result.Trace)
}

// Number of trace segments already handed out.
func (self *Stepper) Position() int {
	return self.pos
}

func (self *Stepper) Reset() {
	self.pos = 0
}

func (self *Stepper) GetResult() Result {
	return self.result
}
