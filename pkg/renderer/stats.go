package renderer

import (
	"bytes"
	"fmt"
	"image"
	"time"

	"github.com/olekukonko/tablewriter"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"

	"github.com/df07/go-spectral-raytracer/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Scene           string
	RenderID        string  // Selects this render's rows from the metric views
	TotalPixels     int     // Total number of pixels rendered
	TotalSamples    int     // Total number of samples taken
	AverageSamples  float64 // Average samples per pixel
	SamplesPerPixel int     // Samples requested per pixel
	MinSamples      int     // Minimum samples taken per pixel
	MaxSamplesUsed  int     // Maximum samples actually used by any pixel

	AverageVariance   float64 // Mean luminance variance over all pixels
	InvalidSamples    int64
	CameraRayFailures int64
	Duration          time.Duration
}

func (r *Renderer) stats() RenderStats {
	bounds := r.film.PixelBounds()
	stats := RenderStats{
		Scene:             r.scene.Name,
		RenderID:          r.id,
		TotalPixels:       bounds.Dx() * bounds.Dy(),
		SamplesPerPixel:   r.config.SamplesPerPixel,
		MinSamples:        r.config.SamplesPerPixel, // Start high, will be reduced
		InvalidSamples:    r.rays.InvalidSamples(),
		CameraRayFailures: r.rays.CameraRayFailures(),
		Duration:          time.Since(r.start),
	}

	var varianceSum float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixel := r.film.Pixel(image.Pt(x, y))
			stats.TotalSamples += pixel.SampleCount
			stats.MinSamples = min(stats.MinSamples, pixel.SampleCount)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, pixel.SampleCount)
			varianceSum += pixel.Variance()
		}
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
		stats.AverageVariance = varianceSum / float64(stats.TotalPixels)
	}
	return stats
}

// Table renders the statistics and the recorded metrics for the scene as a text table
func (s RenderStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Statistic", "Value"})
	table.Append([]string{"Scene", s.Scene})
	table.Append([]string{"Pixels", fmt.Sprintf("%d", s.TotalPixels)})
	table.Append([]string{"Samples", fmt.Sprintf("%d", s.TotalSamples)})
	table.Append([]string{"Samples per pixel", fmt.Sprintf("%.1f (range %d - %d, requested %d)", s.AverageSamples, s.MinSamples, s.MaxSamplesUsed, s.SamplesPerPixel)})
	table.Append([]string{"Mean luminance variance", fmt.Sprintf("%.4g", s.AverageVariance)})
	table.Append([]string{"Invalid samples", fmt.Sprintf("%d", s.InvalidSamples)})
	table.Append([]string{"Camera ray failures", fmt.Sprintf("%d", s.CameraRayFailures)})
	for _, row := range MetricRows(s.Scene, s.RenderID) {
		table.Append(row)
	}
	table.SetFooter([]string{"Render time", s.Duration.Round(time.Millisecond).String()})

	table.Render()
	return buf.String()
}

// MetricRows reads the integrator views back and formats the rows tagged with scene and render
func MetricRows(sceneName, renderID string) [][]string {
	var rows [][]string
	for _, v := range integrator.Views() {
		data, err := view.RetrieveData(v.Name)
		if err != nil {
			continue // View not registered
		}
		for _, row := range data {
			if !hasTag(row, integrator.SceneKey, sceneName) || !hasTag(row, integrator.RenderKey, renderID) {
				continue
			}
			rows = append(rows, []string{v.Description, formatAggregation(row.Data)})
		}
	}
	return rows
}

func hasTag(row *view.Row, key tag.Key, value string) bool {
	for _, t := range row.Tags {
		if t.Key == key && t.Value == value {
			return true
		}
	}
	return false
}

func formatAggregation(data view.AggregationData) string {
	switch d := data.(type) {
	case *view.SumData:
		return fmt.Sprintf("%.0f", d.Value)
	case *view.CountData:
		return fmt.Sprintf("%d", d.Value)
	case *view.DistributionData:
		return fmt.Sprintf("mean %.1fms (min %.1fms, max %.1fms)", d.Mean, d.Min, d.Max)
	case *view.LastValueData:
		return fmt.Sprintf("%g", d.Value)
	default:
		return fmt.Sprintf("%v", data)
	}
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an 8-bit image in [0, 1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	var sum float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			sum += (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
		}
	}
	return sum / float64(pixels)
}
