package wmctrl

import (
	"strconv"
	"strings"

	"github.com/bnema/desktop-switcher/internal/domain"
)

const minListingFields = 5

// ParseListing parses `wmctrl -l -x -p` output. Lines that do not parse are
// skipped.
func ParseListing(output string) []domain.WindowRecord {
	lines := strings.Split(output, "\n")
	windows := make([]domain.WindowRecord, 0, len(lines))
	for _, line := range lines {
		window, ok := parseLine(line)
		if !ok {
			continue
		}
		windows = append(windows, window)
	}

	return windows
}

// parseLine splits "<id> <desktop> <pid> <class> <hostname> <title...>".
func parseLine(line string) (domain.WindowRecord, bool) {
	fields := strings.Fields(line)
	if len(fields) < minListingFields {
		return domain.WindowRecord{}, false
	}

	desktop, err := strconv.Atoi(fields[1])
	if err != nil {
		return domain.WindowRecord{}, false
	}
	pid, err := strconv.Atoi(fields[2])
	if err != nil {
		return domain.WindowRecord{}, false
	}

	return domain.WindowRecord{
		ID:       fields[0],
		Desktop:  desktop,
		PID:      pid,
		Class:    fields[3],
		Hostname: fields[4],
		Title:    strings.Join(fields[5:], " "),
	}, true
}
