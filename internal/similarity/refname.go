package similarity

import "strings"

// RefName maps a cloned utterance filename to the reference recording it was
// synthesized from. Cloned files are named like
// "<speaker>_<utterance>_synthesis<suffix>.wav"; the reference keeps only the
// utterance part. The speaker prefix is matched against its last occurrence
// so utterance names containing the speaker string survive intact. The whole
// basename goes through the heuristic, extension included: a name with no
// "_synthesis" marker keeps its ".wav" and gains a second one, which is what
// the reference layouts this tool consumes actually contain.
func RefName(basename, speaker string) string {
	name := basename

	prefix := speaker + "_"
	if idx := strings.LastIndex(name, prefix); idx >= 0 {
		name = name[idx+len(prefix):]
	}
	if idx := strings.Index(name, "_synthesis"); idx >= 0 {
		name = name[:idx]
	}
	return name + ".wav"
}
