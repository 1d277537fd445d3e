package astro

import (
	"fmt"

	"github.com/siteforge-dev/siteforge/internal/catalog"
)

// componentSource returns the .astro source for a feature component. Forms
// carry a small inline script for the submit interaction; everything else is
// static markup the site owner fills in.
func componentSource(id catalog.ComponentID) string {
	if src, ok := componentBodies[id]; ok {
		return src
	}
	return fmt.Sprintf(`<div class="%[1]s">
  <!-- %[1]s -->
</div>
`, id)
}

var componentBodies = map[catalog.ComponentID]string{
	"ContactForm": `<form class="contact-form" data-form="contact">
  <label>
    Name
    <input type="text" name="name" required />
  </label>
  <label>
    Email
    <input type="email" name="email" required />
  </label>
  <label>
    Message
    <textarea name="message" rows="5" required></textarea>
  </label>
  <button type="submit">Send message</button>
</form>

<script>
  document.querySelectorAll('[data-form="contact"]').forEach((form) => {
    form.addEventListener('submit', (event) => {
      event.preventDefault();
      const note = document.createElement('p');
      note.className = 'form-success';
      note.textContent = "Thanks for reaching out. We'll be in touch soon.";
      form.replaceWith(note);
    });
  });
</script>
`,
	"NewsletterSignup": `<form class="newsletter-signup" data-form="newsletter">
  <input type="email" name="email" placeholder="Your email" required />
  <button type="submit">Subscribe</button>
</form>

<script>
  document.querySelectorAll('[data-form="newsletter"]').forEach((form) => {
    form.addEventListener('submit', (event) => {
      event.preventDefault();
      const note = document.createElement('p');
      note.className = 'form-success';
      note.textContent = "You're on the list.";
      form.replaceWith(note);
    });
  });
</script>
`,
	"BookingForm": `<form class="booking-form" data-form="booking">
  <label>
    Name
    <input type="text" name="name" required />
  </label>
  <label>
    Date
    <input type="date" name="date" required />
  </label>
  <label>
    Time
    <input type="time" name="time" required />
  </label>
  <button type="submit">Request booking</button>
</form>

<script>
  document.querySelectorAll('[data-form="booking"]').forEach((form) => {
    form.addEventListener('submit', (event) => {
      event.preventDefault();
      const note = document.createElement('p');
      note.className = 'form-success';
      note.textContent = "Your request is in. We'll confirm by email.";
      form.replaceWith(note);
    });
  });
</script>
`,
	"AuthForm": `<form class="auth-form">
  <label>
    Email
    <input type="email" name="email" required />
  </label>
  <label>
    Password
    <input type="password" name="password" required />
  </label>
  <button type="submit">Log in</button>
</form>
`,
	"GalleryGrid": `<div class="gallery-grid">
  <!-- gallery images -->
</div>
`,
}
