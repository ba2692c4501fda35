package apperror

import "strconv"

// ParseID parses a path or payload id. Anything that is not an integer is
// rejected with "Invalid id <raw>".
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, Validation("Invalid id %s", raw)
	}
	return id, nil
}
