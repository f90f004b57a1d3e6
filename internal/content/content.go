package content

import "context"

// System resolves pre-rendered leaderboard and challenge documents from the
// content tree. Implementations map route parameters to files under the
// configured directories while enforcing root containment on every resolved
// path.
type System interface {
	// GlobalLeaderboard returns the pre-rendered global leaderboard page
	// for the given year and day.
	// Returns ErrNotFound if no page exists for that year and day.
	GlobalLeaderboard(ctx context.Context, year, day int) ([]byte, error)

	// Challenge returns the pre-rendered challenge page for the given
	// year and day.
	// Returns ErrNotFound if no page exists for that year and day.
	Challenge(ctx context.Context, year, day int) ([]byte, error)

	// PrivateLeaderboardPath returns the on-disk path of the private
	// leaderboard JSON export for the given year and id.
	// Returns ErrNotFound if the export does not exist.
	PrivateLeaderboardPath(year, id int) (string, error)

	// StaticPath returns the on-disk path of a static asset.
	// Returns ErrInvalidPath if name escapes the static directory and
	// ErrNotFound if the asset does not exist or is a directory.
	StaticPath(name string) (string, error)
}
