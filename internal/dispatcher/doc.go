// Package dispatcher registers editor commands and runs them.
//
// Commands are registered by id in a Registry together with the context-menu
// items that invoke them. The Dispatcher looks a command up, runs its handler
// inside one undo group, recovers from handler panics, records metrics, and
// forwards the translated notice for no-op results to a Notifier.
//
//	reg := dispatcher.NewRegistry()
//	_ = dispatcher.RegisterBuiltins(reg)
//
//	d := dispatcher.New(reg, dispatcher.WithNotifier(n), dispatcher.WithTranslator(tr))
//	res := d.Execute(dispatcher.CommandWrapSelection, eng)
package dispatcher
