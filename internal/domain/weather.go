package domain

import "context"

// WeatherProvider returns a short, human readable weather report for a city.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, city string) (string, error)
}
