package api

// Wire contracts for the year-in-motion backend. Field names follow the
// backend's JSON schemas exactly.

// Summary is the whole-period rollup for the selected activity filter.
type Summary struct {
	TotalDistanceKm      float64  `json:"total_distance_km"`
	TotalElevationM      float64  `json:"total_elevation_m"`
	TotalTimeHours       float64  `json:"total_time_hours"`
	ActivitiesCount      int      `json:"activities_count"`
	ActiveDays           int      `json:"active_days"`
	ActiveDaysPercent    float64  `json:"active_days_percent"`
	BestMonth            *string  `json:"best_month"`
	BestMonthDistanceKm  *float64 `json:"best_month_distance_km"`
	LongestStreakDays    int      `json:"longest_streak_days"`
	MostEpicDayDate      *string  `json:"most_epic_day_date"`
	MostEpicDayDistanceKm *float64 `json:"most_epic_day_distance_km"`
	ActivityType         string   `json:"activity_type"`
}

// TrendBucket is one week's or month's rollup. Label is "YYYY-W<n>" for
// weekly buckets and "YYYY-MM" for monthly ones.
type TrendBucket struct {
	Label           string  `json:"label"`
	DistanceKm      float64 `json:"distance_km"`
	MovingTimeHours float64 `json:"moving_time_hours"`
	ElevationM      float64 `json:"elevation_m"`
	ActivitiesCount int     `json:"activities_count"`
	ActivityIDs     []int64 `json:"activity_ids"`
}

// DailyPoint is one calendar day's rollup. Date is "YYYY-MM-DD".
type DailyPoint struct {
	Date              string  `json:"date"`
	DistanceKm        float64 `json:"distance_km"`
	MovingTimeMinutes float64 `json:"moving_time_minutes"`
	ActivitiesCount   int     `json:"activities_count"`
	ActivityIDs       []int64 `json:"activity_ids"`
}

// WeekdayStat is the per-weekday rollup inside a trends response.
type WeekdayStat struct {
	Weekday    string  `json:"weekday"`
	Count      int     `json:"count"`
	DistanceKm float64 `json:"distance_km"`
}

// Trends bundles the weekly, monthly and daily series.
type Trends struct {
	Weekly            []TrendBucket `json:"weekly"`
	Monthly           []TrendBucket `json:"monthly"`
	Daily             []DailyPoint  `json:"daily"`
	WeekdayStats      []WeekdayStat `json:"weekday_stats"`
	MostActiveWeekday *string       `json:"most_active_weekday"`
	ActivityType      string        `json:"activity_type"`
}

// ActivityHighlight is a single notable activity. Identity is ID.
type ActivityHighlight struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Date              string   `json:"date"`
	DistanceKm        float64  `json:"distance_km"`
	ElevationM        float64  `json:"elevation_m"`
	MovingTimeMinutes float64  `json:"moving_time_minutes"`
	Type              string   `json:"type"`
	StravaURL         string   `json:"strava_url"`
	AverageSpeedKmh   *float64 `json:"average_speed_kmh"`
	PaceMinPerKm      *float64 `json:"pace_min_per_km"`
}

// Highlights holds the four ranked highlight lists.
type Highlights struct {
	LongestActivities []ActivityHighlight `json:"longest_activities"`
	BiggestClimbs     []ActivityHighlight `json:"biggest_climbs"`
	FastestRuns       []ActivityHighlight `json:"fastest_runs"`
	FastestRides      []ActivityHighlight `json:"fastest_rides"`
	ActivityType      string              `json:"activity_type"`
}

// Facts is the list of narrative fun facts.
type Facts struct {
	Facts []string `json:"facts"`
}

// WrappedActivity is a notable activity inside the wrapped payload.
type WrappedActivity struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Date              string  `json:"date"`
	Type              string  `json:"type"`
	DistanceKm        float64 `json:"distance_km"`
	ElevationM        float64 `json:"elevation_m"`
	MovingTimeMinutes float64 `json:"moving_time_minutes"`
	KudosCount        *int    `json:"kudos_count"`
	StravaURL         string  `json:"strava_url"`
}

// WrappedKeyStat is a headline number shown on the intro slide.
type WrappedKeyStat struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Formatted string  `json:"formatted"`
}

// RankedPerson is an entry in the kudos/partner leaderboards.
type RankedPerson struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CumulativePoint is one day of the cumulative distance series.
type CumulativePoint struct {
	Date                 string  `json:"date"`
	DistanceKm           float64 `json:"distance_km"`
	CumulativeDistanceKm float64 `json:"cumulative_distance_km"`
}

// MonthDistance is one month of the wrapped distance series.
type MonthDistance struct {
	Month      string  `json:"month"`
	DistanceKm float64 `json:"distance_km"`
}

// TimeOfDayBucket counts activities started in one part of the day.
type TimeOfDayBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// HeatmapPoint is a rounded start location with an activity count.
type HeatmapPoint struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Count int     `json:"count"`
}

// Wrapped is the full payload behind the year-in-review slideshow.
// Any of the notable-activity pointers may be null when no qualifying
// activity exists; the ranked lists may be empty.
type Wrapped struct {
	Year              int               `json:"year"`
	KeyStats          []WrappedKeyStat  `json:"key_stats"`
	TotalDistanceKm   float64           `json:"total_distance_km"`
	TotalTimeHours    float64           `json:"total_time_hours"`
	TotalElevationM   float64           `json:"total_elevation_m"`
	ActivitiesCount   int               `json:"activities_count"`
	ActiveDays        int               `json:"active_days"`
	LongestStreakDays int               `json:"longest_streak_days"`
	MostActiveMonth   *string           `json:"most_active_month"`
	MostActiveWeekday *string           `json:"most_active_weekday"`
	BiggestDay        *WrappedActivity  `json:"biggest_day"`
	LongestActivity   *WrappedActivity  `json:"longest_activity"`
	BiggestClimb      *WrappedActivity  `json:"biggest_climb"`
	MostKudosActivity *WrappedActivity  `json:"most_kudos_activity"`
	TopKudosGivers    []RankedPerson    `json:"top_kudos_givers"`
	FavouritePartners []RankedPerson    `json:"favourite_partners"`
	CumulativeDistance []CumulativePoint `json:"cumulative_distance"`
	MonthlyDistance   []MonthDistance   `json:"monthly_distance"`
	TimeOfDay         []TimeOfDayBucket `json:"time_of_day_distribution"`
	HeatmapPoints     []HeatmapPoint    `json:"heatmap_points"`
	FunLines          []string          `json:"fun_lines"`
}

// AuthURL is the backend's OAuth redirect payload.
type AuthURL struct {
	URL string `json:"url"`
}
