package angular

import (
	"fmt"

	"github.com/siteforge-dev/siteforge/internal/catalog"
)

func componentSource(id catalog.ComponentID) string {
	if src, ok := componentBodies[id]; ok {
		return src
	}
	return fmt.Sprintf(`import { Component } from '@angular/core';

@Component({
  selector: 'app-%s',
  standalone: true,
  template: `+"`"+`
  <div class=%q>
    <!-- %s -->
  </div>
  `+"`"+`,
})
export class %sComponent {}
`, kebab(id), string(id), id, id)
}

var componentBodies = map[catalog.ComponentID]string{
	"ContactForm": `import { Component } from '@angular/core';

@Component({
  selector: 'app-contact-form',
  standalone: true,
  template: ` + "`" + `
  @if (submitted) {
    <p class="form-success">Thanks for reaching out. We'll be in touch soon.</p>
  } @else {
    <form class="contact-form" (submit)="onSubmit($event)">
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
  }
  ` + "`" + `,
})
export class ContactFormComponent {
  submitted = false;

  onSubmit(event: Event): void {
    event.preventDefault();
    this.submitted = true;
  }
}
`,
	"AuthForm": `import { Component } from '@angular/core';

@Component({
  selector: 'app-auth-form',
  standalone: true,
  template: ` + "`" + `
  <form class="auth-form" (submit)="$event.preventDefault()">
    <label>
      Email
      <input type="email" name="email" required />
    </label>
    <label>
      Password
      <input type="password" name="password" required />
    </label>
    <button type="submit">{{ mode === 'login' ? 'Log in' : 'Create account' }}</button>
    <button type="button" class="link" (click)="toggle()">
      {{ mode === 'login' ? 'Need an account?' : 'Already registered?' }}
    </button>
  </form>
  ` + "`" + `,
})
export class AuthFormComponent {
  mode: 'login' | 'register' = 'login';

  toggle(): void {
    this.mode = this.mode === 'login' ? 'register' : 'login';
  }
}
`,
	"BookingForm": `import { Component } from '@angular/core';

@Component({
  selector: 'app-booking-form',
  standalone: true,
  template: ` + "`" + `
  @if (booked) {
    <p class="form-success">Your request is in. We'll confirm by email.</p>
  } @else {
    <form class="booking-form" (submit)="onSubmit($event)">
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
  }
  ` + "`" + `,
})
export class BookingFormComponent {
  booked = false;

  onSubmit(event: Event): void {
    event.preventDefault();
    this.booked = true;
  }
}
`,
	"NewsletterSignup": `import { Component } from '@angular/core';

@Component({
  selector: 'app-newsletter-signup',
  standalone: true,
  template: ` + "`" + `
  @if (done) {
    <p class="form-success">You're on the list.</p>
  } @else {
    <form class="newsletter-signup" (submit)="onSubmit($event)">
      <input type="email" name="email" placeholder="Your email" required />
      <button type="submit">Subscribe</button>
    </form>
  }
  ` + "`" + `,
})
export class NewsletterSignupComponent {
  done = false;

  onSubmit(event: Event): void {
    event.preventDefault();
    this.done = true;
  }
}
`,
}
