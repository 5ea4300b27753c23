package tx

import "github.com/tarantool/go-kvs/kv"

// RequestResponse represents the response for an individual transaction operation.
type RequestResponse struct {
	// Values contains the entries read by a Get or removed by a Delete.
	Values []kv.KeyValue
}

// Response contains the result of a transaction execution.
type Response struct {
	// Succeeded indicates whether the transaction predicates evaluated to true.
	Succeeded bool
	// Results contains the responses for each operation in Then/Else blocks.
	Results []RequestResponse
}

// Flatten returns the values of all operation results in order.
func (r Response) Flatten() []kv.KeyValue {
	kvs := make([]kv.KeyValue, 0, len(r.Results))
	for _, result := range r.Results {
		kvs = append(kvs, result.Values...)
	}

	return kvs
}
