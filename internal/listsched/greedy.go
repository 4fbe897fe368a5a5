package listsched

import "container/heap"

type machine struct {
	index int
	load  int
}

// machineHeap — min-куча по (нагрузка, индекс машины): при равных нагрузках
// выбирается машина с меньшим индексом, как при линейном поиске первого минимума.
type machineHeap []machine

func (h machineHeap) Len() int { return len(h) }

func (h machineHeap) Less(i, j int) bool {
	if h[i].load != h[j].load {
		return h[i].load < h[j].load
	}
	return h[i].index < h[j].index
}

func (h machineHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *machineHeap) Push(x any) { *h = append(*h, x.(machine)) }

func (h *machineHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// assign — жадное списочное расписание: каждая работа из seq уходит на
// наименее загруженную машину. O(n log m).
func assign(loads, seq []int, machines int) (assignment, machineLoads []int) {
	assignment = make([]int, len(loads))
	machineLoads = make([]int, machines)

	h := make(machineHeap, machines)
	for i := range h {
		h[i] = machine{index: i}
	}
	heap.Init(&h)

	for _, job := range seq {
		h[0].load += loads[job]
		assignment[job] = h[0].index
		machineLoads[h[0].index] = h[0].load
		heap.Fix(&h, 0)
	}
	return assignment, machineLoads
}
