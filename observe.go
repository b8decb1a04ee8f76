package palette

import "github.com/google/uuid"

// Subscribe registers fn to run after every successful theme switch. The
// callback receives the new active theme, synchronously, after validation
// and the persistence attempt have both completed. Failed switches do not
// notify. The returned token cancels the subscription via Unsubscribe.
func (r *Registry) Subscribe(fn func(Theme)) string {
	token := uuid.New().String()
	r.subs[token] = fn
	return token
}

// Unsubscribe removes the subscription identified by token. Unknown tokens
// are ignored.
func (r *Registry) Unsubscribe(token string) {
	delete(r.subs, token)
}

func (r *Registry) notify(theme Theme) {
	for _, fn := range r.subs {
		fn(theme)
	}
}
