package domain

// WindowRecord is one line of the window manager's window listing.
type WindowRecord struct {
	ID       string
	Desktop  int
	PID      int
	Class    string
	Hostname string
	Title    string
}

// WindowIndex maps process IDs and window classes to window IDs for the
// windows of a single desktop.
type WindowIndex struct {
	ByPID   map[int]string
	ByClass map[string]string
}

// WindowsOnDesktop keeps the windows whose desktop equals desktop, in
// listing order.
func WindowsOnDesktop(windows []WindowRecord, desktop int) []WindowRecord {
	filtered := make([]WindowRecord, 0, len(windows))
	for _, window := range windows {
		if window.Desktop != desktop {
			continue
		}
		filtered = append(filtered, window)
	}

	return filtered
}

// BuildIndex indexes windows by PID and by class. Later windows overwrite
// earlier ones sharing the same key.
func BuildIndex(windows []WindowRecord) WindowIndex {
	index := WindowIndex{
		ByPID:   make(map[int]string, len(windows)),
		ByClass: make(map[string]string, len(windows)),
	}

	for _, window := range windows {
		if window.ID == "" {
			continue
		}
		index.ByPID[window.PID] = window.ID
		if window.Class != "" {
			index.ByClass[window.Class] = window.ID
		}
	}

	return index
}

// Lookup returns the window owned by pid, falling back to the window of
// class. A zero pid or an empty class disables that lookup.
func (i WindowIndex) Lookup(pid int, class string) (string, bool) {
	if pid > 0 {
		if id, ok := i.ByPID[pid]; ok {
			return id, true
		}
	}
	if class != "" {
		if id, ok := i.ByClass[class]; ok {
			return id, true
		}
	}

	return "", false
}

// FirstWithClass returns the first window in listing order whose class is
// class.
func FirstWithClass(windows []WindowRecord, class string) (WindowRecord, bool) {
	for _, window := range windows {
		if window.Class == class {
			return window, true
		}
	}

	return WindowRecord{}, false
}
