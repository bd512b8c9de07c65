// worker/queue.go
package worker

// Queue serializes jobs through a single worker goroutine. The score log's
// load-append-rewrite sequence is not safe under concurrent writers, so
// every append goes through one of these.
type Queue struct {
	jobs chan job
}

type job struct {
	fn    func() error
	reply chan error
}

func NewQueue(bufferSize int) *Queue {
	q := &Queue{jobs: make(chan job, bufferSize)}
	go q.worker()
	return q
}

func (q *Queue) worker() {
	for j := range q.jobs {
		j.reply <- j.fn()
	}
}

// Do runs fn on the worker goroutine and waits for its result. Jobs run
// strictly in submission order.
func (q *Queue) Do(fn func() error) error {
	reply := make(chan error, 1)
	q.jobs <- job{fn: fn, reply: reply}
	return <-reply
}

// Close stops the worker once queued jobs drain. Do must not be called
// after Close.
func (q *Queue) Close() {
	close(q.jobs)
}
