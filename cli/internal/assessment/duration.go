package assessment

import (
	"regexp"
	"strconv"

	bonsai "github.com/faisalkhan91/bonsai-cli/sdk"
)

// Minutes per unit in a composite duration expression.
const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

var durationPattern = regexp.MustCompile(`^(?:(\d+)d)?(?:(\d+)h)?(?:(\d+)m)?`)

// ParseDuration converts a duration expression into a canonical minute count.
// A bare non-negative integer is read as hours. Otherwise the leading unit
// groups, in fixed order <days>d<hours>h<minutes>m, are summed; trailing text
// after the recognized prefix is ignored. Input supplying no bare integer and
// no leading unit group fails.
func ParseDuration(input string) (int, error) {
	if hours, err := strconv.Atoi(input); err == nil && hours >= 0 {
		return hours * minutesPerHour, nil
	}

	parts := durationPattern.FindStringSubmatch(input)
	if parts == nil || (parts[1] == "" && parts[2] == "" && parts[3] == "") {
		return 0, &bonsai.ValidationError{
			Field:   "maximum-duration",
			Message: "Invalid format for maximum duration. Please use suffix 'm' if specifying in minutes OR suffix 'h' if specifying in hours OR suffix 'd' if specifying in days.",
		}
	}

	days := atoiOrZero(parts[1])
	hours := atoiOrZero(parts[2])
	minutes := atoiOrZero(parts[3])

	return days*minutesPerDay + hours*minutesPerHour + minutes, nil
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
