package filename

const (
	unsafeRegexp = `[^A-Za-z0-9._-]`

	maxLength = 80
)
