package cmd

import (
	"bookstore/internal/adapters/out/kafka"
	"bookstore/internal/adapters/out/postgres"
	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/ports"
	"bookstore/internal/pkg/auth"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
	hasher     auth.PasswordHasher
	tokens     auth.TokenService
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher: kafka.NewOrderEventPublisher(
			[]string{configs.KafkaHost}, configs.KafkaOrderEventTopic),
		hasher: auth.NewPasswordHasher(),
		tokens: auth.NewTokenService([]byte(configs.JWTSecret)),
	}
}

func (c *CompositionRoot) PasswordHasher() auth.PasswordHasher {
	return c.hasher
}

func (c *CompositionRoot) TokenService() auth.TokenService {
	return c.tokens
}

func (c *CompositionRoot) OrderEventPublisher() ports.OrderEventPublisher {
	return c.publisher
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateCreateBookCommandHandler() commands.CreateBookCommandHandler {
	var f commands.BookUoWFactory = FuncBookUoWFactory(func() commands.BookUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBookCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateBookCommandHandler() commands.UpdateBookCommandHandler {
	var f commands.BookUoWFactory = FuncBookUoWFactory(func() commands.BookUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateBookCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteBookCommandHandler() commands.DeleteBookCommandHandler {
	var f commands.BookUoWFactory = FuncBookUoWFactory(func() commands.BookUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteBookCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddReviewCommandHandler() commands.AddReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteReviewCommandHandler() commands.DeleteReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelStaleOrdersCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetUserByEmailQueryHandler() queries.GetUserByEmailQueryHandler {
	return queries.NewGetUserByEmailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllBooksQueryHandler() queries.GetAllBooksQueryHandler {
	return queries.NewGetAllBooksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBookQueryHandler() queries.GetBookQueryHandler {
	return queries.NewGetBookQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByUserQueryHandler() queries.GetOrdersByUserQueryHandler {
	return queries.NewGetOrdersByUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReviewsQueryHandler() queries.GetReviewsQueryHandler {
	return queries.NewGetReviewsQueryHandler(c.gormDB)
}

type FuncBookUoWFactory func() commands.BookUoW

func (f FuncBookUoWFactory) Create() commands.BookUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
