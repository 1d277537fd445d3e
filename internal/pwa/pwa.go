// Package pwa emits the progressive web app assets shipped with every
// generated project: a web manifest, a cache-first service worker and
// placeholder icons.
package pwa

import (
	"encoding/json"
	"fmt"

	"github.com/siteforge-dev/siteforge/internal/project"
	"github.com/siteforge-dev/siteforge/internal/render"
)

type webManifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	ThemeColor      string         `json:"theme_color"`
	BackgroundColor string         `json:"background_color"`
	Icons           []manifestIcon `json:"icons"`
}

type manifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

// Artifacts returns the PWA assets for a project. They land under public/ so
// every supported framework serves them verbatim.
func Artifacts(pctx *project.Context) ([]render.Artifact, error) {
	// Manifest short_name is capped at 12 characters; cut on runes so a
	// multi-byte business name cannot produce invalid UTF-8.
	short := pctx.BusinessName
	if runes := []rune(short); len(runes) > 12 {
		short = string(runes[:12])
	}
	m := webManifest{
		Name:            pctx.BusinessName,
		ShortName:       short,
		StartURL:        "/",
		Display:         "standalone",
		ThemeColor:      render.PrimaryColor(pctx.ColorScheme),
		BackgroundColor: "#ffffff",
		Icons: []manifestIcon{
			{Src: "/icons/icon-192.svg", Sizes: "192x192", Type: "image/svg+xml"},
			{Src: "/icons/icon-512.svg", Sizes: "512x512", Type: "image/svg+xml"},
		},
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal web manifest: %w", err)
	}

	return []render.Artifact{
		{Path: "public/manifest.json", Content: string(data) + "\n", Kind: render.KindConfig},
		{Path: "public/sw.js", Content: serviceWorker, Kind: render.KindSource},
		{Path: "public/icons/icon-192.svg", Content: iconSVG(pctx, 192), Kind: render.KindConfig},
		{Path: "public/icons/icon-512.svg", Content: iconSVG(pctx, 512), Kind: render.KindConfig},
	}, nil
}

// iconSVG draws a flat placeholder icon: primary-color tile with the
// business initial.
func iconSVG(pctx *project.Context, size int) string {
	initial := "?"
	for _, r := range pctx.BusinessName {
		initial = string(r)
		break
	}
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 100 100">
  <rect width="100" height="100" rx="18" fill=%q/>
  <text x="50" y="50" font-family="sans-serif" font-size="52" fill="#ffffff" text-anchor="middle" dominant-baseline="central">%s</text>
</svg>
`, size, size, render.PrimaryColor(pctx.ColorScheme), initial)
}

const serviceWorker = `const CACHE = 'site-cache-v1';

self.addEventListener('install', (event) => {
  event.waitUntil(caches.open(CACHE).then((cache) => cache.addAll(['/'])));
  self.skipWaiting();
});

self.addEventListener('activate', (event) => {
  event.waitUntil(
    caches.keys().then((keys) =>
      Promise.all(keys.filter((k) => k !== CACHE).map((k) => caches.delete(k))),
    ),
  );
});

self.addEventListener('fetch', (event) => {
  if (event.request.method !== 'GET') {
    return;
  }
  event.respondWith(
    caches.match(event.request).then(
      (cached) =>
        cached ||
        fetch(event.request).then((response) => {
          const copy = response.clone();
          caches.open(CACHE).then((cache) => cache.put(event.request, copy));
          return response;
        }),
    ),
  );
});
`
