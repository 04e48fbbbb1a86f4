package browser

import (
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

func randomDelay(minMS, maxMS int) {
	d := rand.Intn(maxMS-minMS+1) + minMS
	time.Sleep(time.Duration(d) * time.Millisecond)
}

// humanScroll steps down the page the way a reader would, then nudges back
// up. Boards with bot detection treat an instant full-height read as a
// scraper; a few paced scrolls also trigger lazy-loaded cards.
func humanScroll(page playwright.Page) error {
	for i := 0; i < 4; i++ {
		if _, err := page.Evaluate("window.scrollBy(0, window.innerHeight / 2)"); err != nil {
			return err
		}
		randomDelay(300, 900)
	}
	_, err := page.Evaluate("window.scrollBy(0, -200)")
	return err
}
