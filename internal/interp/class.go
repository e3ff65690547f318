package interp

// Class is runtime class metadata: a name, an optional superclass, and the
// method table declared in its body. Methods are
// stored unbound; Get binds them to an instance lazily.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (c *Class) Type() string   { return "class" }
func (c *Class) String() string { return c.Name }

// findMethod looks up name in this class, then walks the superclass chain.
func (c *Class) findMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.findMethod(name)
	}
	return nil
}

// Arity is the arity of "init", or 0 if the class declares none.
func (c *Class) Arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance and, if the class (or an ancestor)
// declares "init", runs it against the constructor arguments.
func (c *Class) Call(i *Interpreter, args []Value) (Value, error) {
	instance := &Instance{class: c, fields: make(map[string]Value)}
	if init := c.findMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(i, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a runtime object: a reference to its class plus a mutable
// field map. Fields and methods share a lookup namespace; fields shadow
// methods.
type Instance struct {
	class  *Class
	fields map[string]Value
}

func (o *Instance) Type() string   { return "instance" }
func (o *Instance) String() string { return o.class.Name + " instance" }

// get resolves a property access: instance fields first, then a method
// from the class chain bound to this instance.
func (o *Instance) get(name string) (Value, bool) {
	if v, ok := o.fields[name]; ok {
		return v, true
	}
	if method := o.class.findMethod(name); method != nil {
		return method.Bind(o), true
	}
	return nil, false
}

func (o *Instance) set(name string, value Value) {
	o.fields[name] = value
}
