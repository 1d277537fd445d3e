package svelte

import (
	"fmt"

	"github.com/siteforge-dev/siteforge/internal/catalog"
)

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
	"ContactForm": `<script>
  let submitted = false;
</script>

{#if submitted}
  <p class="form-success">Thanks for reaching out. We'll be in touch soon.</p>
{:else}
  <form class="contact-form" on:submit|preventDefault={() => (submitted = true)}>
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
{/if}
`,
	"AuthForm": `<script>
  let mode = 'login';
</script>

<form class="auth-form" on:submit|preventDefault>
  <label>
    Email
    <input type="email" name="email" required />
  </label>
  <label>
    Password
    <input type="password" name="password" required />
  </label>
  <button type="submit">{mode === 'login' ? 'Log in' : 'Create account'}</button>
  <button type="button" class="link" on:click={() => (mode = mode === 'login' ? 'register' : 'login')}>
    {mode === 'login' ? 'Need an account?' : 'Already registered?'}
  </button>
</form>
`,
	"BookingForm": `<script>
  let booked = false;
</script>

{#if booked}
  <p class="form-success">Your request is in. We'll confirm by email.</p>
{:else}
  <form class="booking-form" on:submit|preventDefault={() => (booked = true)}>
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
{/if}
`,
	"NewsletterSignup": `<script>
  let done = false;
</script>

{#if done}
  <p class="form-success">You're on the list.</p>
{:else}
  <form class="newsletter-signup" on:submit|preventDefault={() => (done = true)}>
    <input type="email" name="email" placeholder="Your email" required />
    <button type="submit">Subscribe</button>
  </form>
{/if}
`,
	"GalleryGrid": `<script>
  import Lightbox from './Lightbox.svelte';

  const images = [];
  let selected = null;
</script>

<div class="gallery-grid">
  {#each images as img (img.src)}
    <button class="gallery-item" on:click={() => (selected = img)}>
      <img src={img.src} alt={img.alt} loading="lazy" />
    </button>
  {/each}
  {#if selected}
    <Lightbox image={selected} on:close={() => (selected = null)} />
  {/if}
</div>
`,
	"Lightbox": `<script>
  import { createEventDispatcher } from 'svelte';

  export let image;
  const dispatch = createEventDispatcher();
</script>

<div class="lightbox" role="dialog" on:click={() => dispatch('close')}>
  <img src={image.src} alt={image.alt} />
</div>
`,
}
