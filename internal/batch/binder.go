package batch

// Bind resolves every placeholder to its row value. A placeholder
// mapped to a column present in the row takes the row's value,
// anything else resolves to the empty string. Bind is total: it never
// fails, whatever the placeholder set, mapping or row.
func Bind(placeholders []string, mapping map[string]string, row map[string]string) map[string]string {
	payload := make(map[string]string, len(placeholders))
	for _, name := range placeholders {
		value := ""
		if column, isExist := mapping[name]; isExist {
			if v, isExist := row[column]; isExist {
				value = v
			}
		}
		payload[name] = value
	}
	return payload
}
