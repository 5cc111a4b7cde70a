package report

import "fmt"

// badgeColor maps a score to the shields.io color bands.
func badgeColor(score float64) string {
	switch {
	case score >= 90:
		return "#4c1"
	case score >= 70:
		return "#97ca00"
	case score >= 50:
		return "#dfb317"
	default:
		return "#e05d44"
	}
}

// Badge renders an SVG score badge.
func Badge(score float64) string {
	color := badgeColor(score)
	scoreStr := fmt.Sprintf("%.1f", score)

	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="120" height="20">
    <linearGradient id="b" x2="0" y2="100%%">
        <stop offset="0" stop-color="#bbb" stop-opacity=".1"/>
        <stop offset="1" stop-opacity=".1"/>
    </linearGradient>
    <mask id="a">
        <rect width="120" height="20" rx="3" fill="#fff"/>
    </mask>
    <g mask="url(#a)">
        <path fill="#555" d="M0 0h80v20H0z"/>
        <path fill="%s" d="M80 0h40v20H80z"/>
        <path fill="url(#b)" d="M0 0h120v20H0z"/>
    </g>
    <g fill="#fff" text-anchor="middle" font-family="DejaVu Sans,Verdana,Geneva,sans-serif" font-size="11">
        <text x="40" y="15" fill="#010101" fill-opacity=".3">Agent Score</text>
        <text x="40" y="14">Agent Score</text>
        <text x="100" y="15" fill="#010101" fill-opacity=".3">%s</text>
        <text x="100" y="14">%s</text>
    </g>
</svg>`, color, scoreStr, scoreStr)
}
