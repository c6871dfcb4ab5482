package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mazecrawl/pkg/game/i18n"
	"mazecrawl/pkg/game/renderer"
)

// layerClasses names the CSS class of each draw layer
var layerClasses = []string{"wall", "reward", "enemy", "player"}

// ScreenshotHTML renders a view as a standalone HTML page
func ScreenshotHTML(v renderer.View) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Maze Crawl - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.0;
            font-size: 16px;
        }
        .wall { color: #666; }
        .reward { color: #ffff00; font-weight: bold; }
        .enemy { color: #ff4444; font-weight: bold; }
        .player { color: #00ff00; font-weight: bold; }
        .status { color: #00ffff; }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	b.WriteString(fmt.Sprintf(`    <div class="header">%s</div>`+"\n", html.EscapeString(i18n.T("TITLE"))))

	canvas := renderer.Compose(v.Frame)
	b.WriteString(`    <div class="map-container">` + "\n")
	for y := 0; y < canvas.Height(); y++ {
		b.WriteString(`        <div class="map-row">`)
		for _, span := range canvas.Spans(y) {
			class := "wall"
			if span.Layer < len(layerClasses) {
				class = layerClasses[span.Layer]
			}
			b.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, class, html.EscapeString(span.Text)))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString(`    </div>` + "\n")

	for i, line := range renderer.StatusLines(v) {
		class := "message"
		if i == 0 {
			class = "status"
		}
		b.WriteString(fmt.Sprintf(`    <div class="%s">%s</div>`+"\n", class, html.EscapeString(line)))
	}

	b.WriteString(`</body>
</html>
`)
	return b.String()
}

// SaveScreenshotHTML writes the view to a timestamped HTML file in dir and
// returns the file name
func SaveScreenshotHTML(dir string, v renderer.View) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))

	if err := os.WriteFile(filename, []byte(ScreenshotHTML(v)), 0o644); err != nil {
		return "", err
	}
	return filename, nil
}
