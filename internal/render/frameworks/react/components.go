package react

import (
	"fmt"

	"github.com/siteforge-dev/siteforge/internal/catalog"
)

// componentSource returns the source for a feature component. Interactive
// components get a working stub with local state; the rest get a presentational
// shell the site owner fills in.
func componentSource(id catalog.ComponentID) string {
	if src, ok := componentBodies[id]; ok {
		return src
	}
	return fmt.Sprintf(`export default function %[1]s() {
  return (
    <div className="%[1]s">
      {/* %[1]s */}
    </div>
  );
}
`, id)
}

var componentBodies = map[catalog.ComponentID]string{
	"ContactForm": `import { useState } from 'react';

export default function ContactForm() {
  const [submitted, setSubmitted] = useState(false);

  const handleSubmit = (event) => {
    event.preventDefault();
    setSubmitted(true);
  };

  if (submitted) {
    return <p className="form-success">Thanks for reaching out. We'll be in touch soon.</p>;
  }

  return (
    <form className="contact-form" onSubmit={handleSubmit}>
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
        <textarea name="message" rows="5" required />
      </label>
      <button type="submit">Send message</button>
    </form>
  );
}
`,
	"AuthForm": `import { useState } from 'react';

export default function AuthForm() {
  const [mode, setMode] = useState('login');

  return (
    <form className="auth-form" onSubmit={(e) => e.preventDefault()}>
      <label>
        Email
        <input type="email" name="email" required />
      </label>
      <label>
        Password
        <input type="password" name="password" required />
      </label>
      <button type="submit">{mode === 'login' ? 'Log in' : 'Create account'}</button>
      <button type="button" className="link" onClick={() => setMode(mode === 'login' ? 'register' : 'login')}>
        {mode === 'login' ? 'Need an account?' : 'Already registered?'}
      </button>
    </form>
  );
}
`,
	"BookingForm": `import { useState } from 'react';

export default function BookingForm() {
  const [booked, setBooked] = useState(false);

  const handleSubmit = (event) => {
    event.preventDefault();
    setBooked(true);
  };

  if (booked) {
    return <p className="form-success">Your request is in. We'll confirm by email.</p>;
  }

  return (
    <form className="booking-form" onSubmit={handleSubmit}>
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
  );
}
`,
	"NewsletterSignup": `import { useState } from 'react';

export default function NewsletterSignup() {
  const [done, setDone] = useState(false);

  if (done) {
    return <p className="form-success">You're on the list.</p>;
  }

  return (
    <form
      className="newsletter-signup"
      onSubmit={(e) => {
        e.preventDefault();
        setDone(true);
      }}
    >
      <input type="email" name="email" placeholder="Your email" required />
      <button type="submit">Subscribe</button>
    </form>
  );
}
`,
	"GalleryGrid": `import { useState } from 'react';
import Lightbox from './Lightbox';

const images = [];

export default function GalleryGrid() {
  const [selected, setSelected] = useState(null);

  return (
    <div className="gallery-grid">
      {images.map((img) => (
        <button key={img.src} className="gallery-item" onClick={() => setSelected(img)}>
          <img src={img.src} alt={img.alt} loading="lazy" />
        </button>
      ))}
      {selected && <Lightbox image={selected} onClose={() => setSelected(null)} />}
    </div>
  );
}
`,
	"Lightbox": `export default function Lightbox({ image, onClose }) {
  return (
    <div className="lightbox" role="dialog" onClick={onClose}>
      <img src={image.src} alt={image.alt} />
    </div>
  );
}
`,
	"TestimonialCarousel": `import { useState } from 'react';

export default function TestimonialCarousel({ quotes = [] }) {
  const [index, setIndex] = useState(0);

  if (quotes.length === 0) {
    return null;
  }
  const quote = quotes[index % quotes.length];

  return (
    <div className="testimonial-carousel">
      <blockquote>{quote.text}</blockquote>
      <cite>{quote.author}</cite>
      <button type="button" onClick={() => setIndex(index + 1)}>Next</button>
    </div>
  );
}
`,
}
