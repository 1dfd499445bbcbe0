package handlers

import (
	"log"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/AlenaMolokova/canadasin/internal/sin"
	"github.com/AlenaMolokova/canadasin/internal/utils"
)

var assignedLeads = map[sin.Kind][]uint8{
	sin.KindSIN: {1, 2, 3, 4, 5, 6, 7, 9},
	sin.KindBN:  {8},
}

type GenerateHandler struct {
	limit   int
	newRand func() *rand.Rand
}

func NewGenerateHandler(limit int) *GenerateHandler {
	return &GenerateHandler{
		limit: limit,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
}

// ServeHTTP answers GET ?kind=sin|bn&lead=0-9&count=N with grouped test numbers.
// Without lead, each number starts with a digit that has an allocation.
func (h *GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	kind := sin.KindSIN
	if s := q.Get("kind"); s != "" {
		k, err := sin.ParseKind(s)
		if err != nil {
			utils.WriteJSONError(w, http.StatusBadRequest, "Unknown kind")
			return
		}
		kind = k
	}

	count := 1
	if s := q.Get("count"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > h.limit {
			log.Printf("Invalid generate count %q", s)
			utils.WriteJSONError(w, http.StatusBadRequest, "count must be between 1 and "+strconv.Itoa(h.limit))
			return
		}
		count = n
	}

	leads := assignedLeads[kind]
	if s := q.Get("lead"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 || n > 9 {
			utils.WriteJSONError(w, http.StatusBadRequest, "lead must be a single digit")
			return
		}
		leads = []uint8{uint8(n)}
	}

	rng := h.newRand()
	numbers := make([]string, 0, count)
	for i := 0; i < count; i++ {
		n, err := sin.Generate(rng, kind, leads[rng.IntN(len(leads))])
		if err != nil {
			log.Printf("Failed to generate number: %v", err)
			utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		numbers = append(numbers, n.String())
	}

	log.Printf("Generated %d test %s numbers", count, kind)
	utils.WriteJSON(w, http.StatusOK, numbers)
}
