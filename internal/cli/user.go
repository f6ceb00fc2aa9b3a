package cli

type UserCmd struct {
	Add  UserAddCmd  `cmd:"" help:"Register a user and switch to it."`
	Use  UserUseCmd  `cmd:"" help:"Switch the active user."`
	List UserListCmd `cmd:"" help:"List registered users."`
}

type UserAddCmd struct {
	Name string `arg:"" help:"User name."`
}

func (c *UserAddCmd) Run(ctx *Context) error {
	user, err := ctx.AddUser(c.Name)
	if err != nil {
		return err
	}
	ctx.printf("Added user %s (%s)\n", user.Name, user.ID)
	return nil
}

type UserUseCmd struct {
	Name string `arg:"" help:"User name."`
}

func (c *UserUseCmd) Run(ctx *Context) error {
	if err := ctx.UseUser(c.Name); err != nil {
		return err
	}
	ctx.printf("Switched to %s\n", c.Name)
	return nil
}

type UserListCmd struct{}

func (c *UserListCmd) Run(ctx *Context) error {
	users := ctx.RegisteredUsers()
	if len(users) == 0 {
		ctx.printf("No users registered.\n")
		return nil
	}

	active, _ := ctx.ActiveUser()
	for _, user := range users {
		marker := " "
		if user == active {
			marker = "*"
		}
		count := 0
		if habits, ok := ctx.Store.All(user); ok {
			count = len(habits)
		}
		ctx.printf("%s %s (%d habits)\n", marker, user.Name, count)
	}
	return nil
}
