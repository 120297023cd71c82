package inference

import "sort"

// eliminationOrder greedily orders hidden on the interaction graph of
// factors. candidates are scanned by rank, so the lower rank wins a tie.
//
// Complexity: O(h²·d²) for h hidden variables of maximum degree d.
func eliminationOrder(factors []*Factor, hidden []string, h Heuristic, rank map[string]int) []string {
	adj := make(map[string]map[string]struct{})
	link := func(a, b string) {
		if adj[a] == nil {
			adj[a] = make(map[string]struct{})
		}
		if adj[b] == nil {
			adj[b] = make(map[string]struct{})
		}
		adj[a][b] = struct{}{}
		adj[b][a] = struct{}{}
	}
	for _, f := range factors {
		for i := 0; i < len(f.vars); i++ {
			for j := i + 1; j < len(f.vars); j++ {
				link(f.vars[i], f.vars[j])
			}
		}
	}

	remaining := append([]string(nil), hidden...)
	sort.Slice(remaining, func(i, j int) bool { return rank[remaining[i]] < rank[remaining[j]] })

	order := make([]string, 0, len(remaining))
	for len(remaining) > 0 {
		best, bestCost := 0, -1
		for i, v := range remaining {
			c := cost(adj, v, h)
			if bestCost < 0 || c < bestCost {
				best, bestCost = i, c
			}
		}
		v := remaining[best]
		remaining = append(remaining[:best], remaining[best+1:]...)
		order = append(order, v)

		nb := make([]string, 0, len(adj[v]))
		for u := range adj[v] {
			nb = append(nb, u)
		}
		for i := 0; i < len(nb); i++ {
			delete(adj[nb[i]], v)
			for j := i + 1; j < len(nb); j++ {
				link(nb[i], nb[j])
			}
		}
		delete(adj, v)
	}

	return order
}

func cost(adj map[string]map[string]struct{}, v string, h Heuristic) int {
	if h == MinDegree {
		return len(adj[v])
	}
	nb := make([]string, 0, len(adj[v]))
	for u := range adj[v] {
		nb = append(nb, u)
	}
	fill := 0
	for i := 0; i < len(nb); i++ {
		for j := i + 1; j < len(nb); j++ {
			if _, ok := adj[nb[i]][nb[j]]; !ok {
				fill++
			}
		}
	}

	return fill
}
