package videos_test

import (
	"testing"

	"github.com/Abdulllah321/sports-landing-sub001/internal/catalog"
	"github.com/Abdulllah321/sports-landing-sub001/internal/domain/videos"
	"github.com/Abdulllah321/sports-landing-sub001/internal/seed"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeSeedVideos(t *testing.T) {
	s := videos.Summarize(seed.Videos())

	assert.Equal(t, 5, s.Count)
	assert.Equal(t, 3, s.Published)
	assert.Equal(t, 47350, s.TotalViews)
	assert.Equal(t, 9470.0, s.AverageViews)
	assert.Equal(t, 3716, s.TotalLikes)
	assert.Equal(t, 7.85, s.LikeRate)
	assert.Equal(t, 2, s.BySport.Get("Football"))
}

func TestVideosHaveNoLocation(t *testing.T) {
	c := catalog.NewCriteria()
	c.SetLocation("Lahore")
	assert.Empty(t, catalog.Filter(seed.Videos(), c))

	c.Reset()
	c.SetDate("2024-03-02")
	assert.Empty(t, catalog.Filter(seed.Videos(), c), "videos carry no schedule")

	assert.Empty(t, catalog.DistinctLocations(seed.Videos()))
}
