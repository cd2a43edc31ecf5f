package commands

import "sort"

type usernameCount struct {
	username string
	count    int64
}

// countByUsername tallies usernames into per-user counts, ordered by
// username for deterministic output.
func countByUsername(usernames []string) []usernameCount {
	tally := make(map[string]int64, len(usernames))
	for _, username := range usernames {
		tally[username]++
	}

	counts := make([]usernameCount, 0, len(tally))
	for username, count := range tally {
		counts = append(counts, usernameCount{username: username, count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].username < counts[j].username })
	return counts
}
