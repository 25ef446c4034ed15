package settle

import "container/heap"

// party is one side of an unsettled position: a participant and the positive
// magnitude still outstanding on their balance.
type party struct {
	id     string
	amount float64
}

// partyHeap is a max-heap over outstanding magnitudes. Ties on magnitude
// order ascending by participant id so settlement output is reproducible
// regardless of map iteration order.
type partyHeap []party

func (h partyHeap) Len() int { return len(h) }

func (h partyHeap) Less(i, j int) bool {
	if h[i].amount != h[j].amount {
		return h[i].amount > h[j].amount
	}
	return h[i].id < h[j].id
}

func (h partyHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *partyHeap) Push(x any) {
	*h = append(*h, x.(party))
}

func (h *partyHeap) Pop() any {
	old := *h
	n := len(old)
	p := old[n-1]
	*h = old[:n-1]
	return p
}

// newPartyHeap initializes a heap from the given parties.
func newPartyHeap(parties []party) *partyHeap {
	h := partyHeap(parties)
	heap.Init(&h)
	return &h
}
