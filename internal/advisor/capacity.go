package advisor

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	gbPattern = regexp.MustCompile(`(\d+)\s*gb`)
	tbPattern = regexp.MustCompile(`(\d+)\s*tb`)
)

// capacityKeywords covers storage names where the size is glued to other
// text in a way the patterns above miss.
var capacityKeywords = []struct {
	keyword   string
	gigabytes int
}{
	{"1tb", 1024}, {"1 tb", 1024},
	{"2tb", 2048}, {"2 tb", 2048},
	{"500gb", 500}, {"500 gb", 500},
	{"250gb", 250}, {"250 gb", 250},
	{"120gb", 120}, {"120 gb", 120},
	{"240gb", 240}, {"240 gb", 240},
	{"480gb", 480}, {"480 gb", 480},
	{"960gb", 960}, {"960 gb", 960},
}

// StorageCapacity parses a capacity in gigabytes out of a storage part
// name. Returns false when no capacity can be determined.
func StorageCapacity(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	lower := strings.ToLower(name)

	if m := gbPattern.FindStringSubmatch(lower); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n, true
		}
	}
	if m := tbPattern.FindStringSubmatch(lower); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n * 1024, true
		}
	}

	for _, kw := range capacityKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.gigabytes, true
		}
	}

	return 0, false
}
