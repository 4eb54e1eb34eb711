package main

import "github.com/tanema/gween"

// tweenStep is the tween clock advance per frame, in seconds.
const tweenStep = 1.0 / 60

// Action reacts to one running tween and starts its followers when it ends.
type Action struct {
	nexts    []func(g *Game)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	a.onFinish = append(a.onFinish, f)
}

// next chains t to start once the tween owning a finishes.
func (a *Action) next(t *gween.Tween, onChange func(float32)) *Action {
	action := &Action{onChange: onChange}
	a.nexts = append(a.nexts, func(g *Game) { g.Tweens[t] = action })
	return action
}

func (a *Action) finish(g *Game) {
	for _, f := range a.onFinish {
		f()
	}
	for _, start := range a.nexts {
		start(g)
	}
}

// updateTweens advances every tween one frame. Followers started by a
// finishing tween begin on the next frame.
func (g *Game) updateTweens() {
	var done []*Action
	for t, a := range g.Tweens {
		v, finished := t.Update(tweenStep)
		if a.onChange != nil {
			a.onChange(v)
		}
		if finished {
			delete(g.Tweens, t)
			done = append(done, a)
		}
	}
	for _, a := range done {
		a.finish(g)
	}
}
