package vue

import (
	"fmt"

	"github.com/siteforge-dev/siteforge/internal/catalog"
)

func componentSource(id catalog.ComponentID) string {
	if src, ok := componentBodies[id]; ok {
		return src
	}
	return fmt.Sprintf(`<template>
  <div class="%[1]s">
    <!-- %[1]s -->
  </div>
</template>
`, id)
}

var componentBodies = map[catalog.ComponentID]string{
	"ContactForm": `<script setup>
import { ref } from 'vue';

const submitted = ref(false);
</script>

<template>
  <p v-if="submitted" class="form-success">Thanks for reaching out. We'll be in touch soon.</p>
  <form v-else class="contact-form" @submit.prevent="submitted = true">
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
</template>
`,
	"AuthForm": `<script setup>
import { ref } from 'vue';

const mode = ref('login');
</script>

<template>
  <form class="auth-form" @submit.prevent>
    <label>
      Email
      <input type="email" name="email" required />
    </label>
    <label>
      Password
      <input type="password" name="password" required />
    </label>
    <button type="submit">{{ mode === 'login' ? 'Log in' : 'Create account' }}</button>
    <button type="button" class="link" @click="mode = mode === 'login' ? 'register' : 'login'">
      {{ mode === 'login' ? 'Need an account?' : 'Already registered?' }}
    </button>
  </form>
</template>
`,
	"BookingForm": `<script setup>
import { ref } from 'vue';

const booked = ref(false);
</script>

<template>
  <p v-if="booked" class="form-success">Your request is in. We'll confirm by email.</p>
  <form v-else class="booking-form" @submit.prevent="booked = true">
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
</template>
`,
	"NewsletterSignup": `<script setup>
import { ref } from 'vue';

const done = ref(false);
</script>

<template>
  <p v-if="done" class="form-success">You're on the list.</p>
  <form v-else class="newsletter-signup" @submit.prevent="done = true">
    <input type="email" name="email" placeholder="Your email" required />
    <button type="submit">Subscribe</button>
  </form>
</template>
`,
	"GalleryGrid": `<script setup>
import { ref } from 'vue';
import Lightbox from './Lightbox.vue';

const images = [];
const selected = ref(null);
</script>

<template>
  <div class="gallery-grid">
    <button v-for="img in images" :key="img.src" class="gallery-item" @click="selected = img">
      <img :src="img.src" :alt="img.alt" loading="lazy" />
    </button>
    <Lightbox v-if="selected" :image="selected" @close="selected = null" />
  </div>
</template>
`,
	"Lightbox": `<script setup>
defineProps({ image: Object });
defineEmits(['close']);
</script>

<template>
  <div class="lightbox" role="dialog" @click="$emit('close')">
    <img :src="image.src" :alt="image.alt" />
  </div>
</template>
`,
}
