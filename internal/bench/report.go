package bench

// Result is the aggregated outcome of one benchmark run.
type Result struct {
	RunID    string `json:"run_id" yaml:"run_id"`
	Strategy string `json:"strategy" yaml:"strategy"`
	Workers  int    `json:"workers" yaml:"workers"`
	Buckets  int    `json:"buckets" yaml:"buckets"`
	Keys     int    `json:"keys" yaml:"keys"`
	Seed     int64  `json:"seed" yaml:"seed"`

	Inserted  int   `json:"inserted" yaml:"inserted"`
	Retrieved int   `json:"retrieved" yaml:"retrieved"`
	Lost      int64 `json:"lost" yaml:"lost"`

	PutSeconds float64 `json:"put_seconds" yaml:"put_seconds"`
	GetSeconds float64 `json:"get_seconds" yaml:"get_seconds"`

	// WorkerLost holds each worker's private miss count, index by
	// worker id.
	WorkerLost []int64 `json:"worker_lost" yaml:"worker_lost"`
}

// PutOpsPerSec returns the put phase throughput.
func (r *Result) PutOpsPerSec() float64 {
	if r.PutSeconds <= 0 {
		return 0
	}
	return float64(r.Inserted) / r.PutSeconds
}

// GetOpsPerSec returns the get phase throughput.
func (r *Result) GetOpsPerSec() float64 {
	if r.GetSeconds <= 0 {
		return 0
	}
	return float64(r.Keys) / r.GetSeconds
}
