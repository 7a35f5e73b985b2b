// Package template resolves [slot] placeholders in activity flow text and
// renders compiled candidates into teacher-facing cards.
package template

import "strings"

// ExtractSlots returns the slot names referenced in steps, in first-seen
// order without duplicates.
func ExtractSlots(steps []string) []string {
	seen := make(map[string]bool)
	var slots []string
	for _, step := range steps {
		scanSlots(step, func(name string) string {
			if !seen[name] {
				seen[name] = true
				slots = append(slots, name)
			}
			return ""
		})
	}
	return slots
}

// ResolveStep replaces each [name] token with lookup[name], then
// fallback[name]. Tokens that resolve to nothing stay as literal bracketed
// text so the gap is visible in the output.
func ResolveStep(step string, lookup, fallback map[string]string) string {
	return scanSlots(step, func(name string) string {
		if v := strings.TrimSpace(lookup[name]); v != "" {
			return v
		}
		if v := strings.TrimSpace(fallback[name]); v != "" {
			return v
		}
		return "[" + name + "]"
	})
}

// ResolveFlow applies ResolveStep to every step.
func ResolveFlow(steps []string, lookup, fallback map[string]string) []string {
	out := make([]string, len(steps))
	for i, step := range steps {
		out[i] = ResolveStep(step, lookup, fallback)
	}
	return out
}

// scanSlots walks s and writes replace(name) in place of each [name] token.
// An unmatched '[' and empty brackets are copied through unchanged.
func scanSlots(s string, replace func(name string) string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if s[i] != '[' {
			b.WriteByte(s[i])
			i++
			continue
		}
		end := strings.IndexByte(s[i+1:], ']')
		if end < 0 {
			b.WriteString(s[i:])
			break
		}
		name := strings.TrimSpace(s[i+1 : i+1+end])
		if name == "" || strings.ContainsRune(name, '[') {
			b.WriteByte(s[i])
			i++
			continue
		}
		b.WriteString(replace(name))
		i += end + 2
	}
	return b.String()
}
